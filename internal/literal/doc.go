// Package literal parses the tuple, list and set literals written by the
// result encoder.
//
// The grammar is deliberately narrow:
//
//	value := int | tuple | list | set
//	tuple := '(' [ value { ',' value } [ ',' ] ] ')'
//	list  := '[' [ value { ',' value } [ ',' ] ] ']'
//	set   := '{' [ value { ',' value } [ ',' ] ] '}'
//	int   := [ '-' | '+' ] digit { digit }
//
// A parenthesised single value without a trailing comma is the value itself,
// so "(7)" is the integer 7 and "(7,)" is a one-tuple. Names, strings,
// floats, operators and calls are rejected.
package literal
