// Package rcs parses the textual "comma-v" storage format used by the
// Revision Control System (RCS) into a structured in-memory document.
//
// The entry point is ParseRcs, a pure function from the full file
// contents to an RcsData document plus any unconsumed trailing input.
// RcsFile wraps it with an mmap-backed loader for on-disk ,v files.
package rcs

/*
document  ::= admin delta* "desc" string deltatext+ line-ending

admin     ::= "head"       num ";"
              { "branch"   num ";" }
              "access"     id* ";"
              "symbols"    { sym ":" num }* ";"
              "locks"      { id ":" num }* ";"
              { "strict" ";" }
              { "integrity" intstring ";" }
              { "comment"   string ";" }
              { "expand"    string ";" }

delta     ::= num
              "date"       num ";"
              "author"     id ";"
              "state"      {id} ";"
              "branches"   num* ";"
              "next"       {num} ";"
              { "commitid" sym ";" }

deltatext ::= num
              "log"        string
              "text"       string

num       ::= digit+ ( "." digit+ )*
string    ::= "@" { any character, with "@" doubled }* "@"
intstring ::= "@" { any character except "@" }* "@"
sym       ::= idchar+
id        ::= { idchar | "." }+
idchar    ::= any visible graphic character except special
special   ::= "$" | "," | "." | ":" | ";" | "@"

The body of an ordinary deltatext string is a diff instruction stream:

diffcmd   ::= ( "a" | "d" ) digit+ ws digit+ sp* line-ending
              ( "a" only: exactly <count> raw text lines )

Whitespace between tokens is insignificant everywhere except inside
string bodies and diff lines.
*/
