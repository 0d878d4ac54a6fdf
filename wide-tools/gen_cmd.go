package main

import (
	"fmt"

	"github.com/npillmayer/widestr/internal/srcload"
	"github.com/npillmayer/widestr/widegen"
	"github.com/thatisuday/commando"
)

func runGenCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	file := args["file"].Value
	if file == "" {
		fatalf("source file is required")
	}
	outPath := mustFlagString(flags["output"], "output")
	if outPath == "" || outPath == "-" {
		outPath = widegen.OutputPath(file)
	}
	src, err := srcload.LoadSource(file)
	if err != nil {
		fatalf("%v", err)
	}
	out, err := widegen.Generate(src, encodeOptions(flags)...)
	if err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["verify"], "verify") {
		if err := out.Verify(outPath); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("%s OK (%d constants)\n", outPath, len(out.Constants))
		return
	}
	if err := out.Save(outPath); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s (%d constants)\n", outPath, len(out.Constants))
}
