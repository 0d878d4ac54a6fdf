/*
Package utf8scan breaks Unicode scalar values off the head of UTF-8 text.

The scanner never fails. Empty input yields “no more input”; any other
input yields exactly one scalar value and a strictly shorter remainder.
Leading bytes which do not start a UTF-8 sequence, and multi-byte sequences
which are cut short by the end of the input, produce the replacement
character U+FFFD and consume a single byte.

The scanner classifies a sequence by its leading byte only. In mode Lenient
(the default), bytes in continuation positions are taken as they are and
bits 0–5 are extracted without checking the `10xxxxxx` pattern. Malformed
continuation bytes therefore produce arbitrary scalar values instead of
U+FFFD. Clients wanting replacement on malformed continuation bytes select
mode Strict. Neither mode rejects overlong encodings, surrogate code points
or values above U+10FFFF; the decoding arithmetic's result is passed on
unchanged.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package utf8scan
