/*
Package ports defines the driven ports (interfaces) for the conscript console.

These interfaces decouple the console core from its collaborators, allowing
the terminal, filesystem, script format and logging sink to be swapped per
host environment (CLI, tests, embedded usage).

# Key Interfaces

  - Logger: The fire-and-forget logging sink (prompt, echoes, errors).
  - Terminal: Blocking one-line reads from the interactive operator.
  - Filesystem: One-shot automation file loading.
  - ScriptParser: Turns raw file content into a domain.Script.
*/
package ports
