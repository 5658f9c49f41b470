/* Package metaiivm implements the virtual machine at the heart of Schorre's
META II compiler-writing language.

A META II program (a "masm") is a syntax-directed translator: it
simultaneously recognizes an input language and emits a target-language
program. Given a masm and an input string, the VM either produces translated
output and halts, or halts with a recognition-error status.

The VM itself is the hard part: a 19-opcode dispatch loop whose primitives
scan literals/identifiers/numbers/quoted strings out of the input, assemble
output lines from copied tokens and generated labels, and push/pop
three-slot activation frames on rule call/return. ParseProgram, also in this
package, reads masm text into a Program. Everything else -- selecting an
input source, wiring up a command-line driver -- lives in package main under
cmd/, as an external collaborator with a narrow contract: hand the VM a
Program, an input string and an output sink.

The VM is not a general bytecode engine. It has no arithmetic, no heap, no
user-defined data, and does no concurrent execution of a single run. See
Run and New for the entry points a host uses to drive it.
*/
package metaiivm
