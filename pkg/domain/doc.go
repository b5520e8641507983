/*
Package domain contains the core domain models for the conscript console.

It defines the fundamental entities of the console state machine, such as the
Status variants, the automation Script tree, and the traversal Cursor. This
package is kept pure and free of external dependencies like I/O or parsing,
following Hexagonal Architecture principles.

# Key Entities

  - Status: The console's acquisition/execution mode (terminal- or file-sourced).
  - Script: The loaded two-level instruction/sub-command tree plus its pass count.
  - Cursor: The traversal engine's memory of which node is served next.
  - Validity: The per-cycle flags that drive state transitions.
*/
package domain
