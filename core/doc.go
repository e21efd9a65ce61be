// Package core provides low-level lexical primitives for SVG documents.
//
// This package implements a single-pass tokenizer and a matching writer for
// the XML dialect produced by vector drawing editors. Unlike encoding/xml,
// the tokenizer captures the exact source bytes of every token, so a
// document can be replayed byte-for-byte. Only element tags are given
// structure (name plus an ordered attribute list); character data,
// comments, CDATA sections, processing instructions, and doctype
// declarations are all surfaced as opaque raw tokens.
//
// # Tokens
//
// The [Lexer] yields [Token] values of five kinds:
//
//   - [TokenStartTag] - an opening element tag
//   - [TokenEndTag] - a closing element tag
//   - [TokenSelfClosing] - a self-closing element tag
//   - [TokenRaw] - anything else, held verbatim
//   - [TokenEOF] - end of input
//
// Every token retains its raw source bytes. Mutating a token through
// [Token.SetName], [Token.DeleteAttr], or [Token.AppendAttr] discards the
// raw form, and the [Writer] re-synthesizes the tag from the token's name
// and attribute list instead. Attribute order and duplicate keys are
// preserved in both directions.
//
// # Character encodings
//
// Documents that declare a non-UTF-8 encoding in their XML declaration can
// be transcoded with [Transcoder] together with x/text/transform. UTF-8 and
// US-ASCII input is passed through untouched.
package core
