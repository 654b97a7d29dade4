/*
Package domain contains the core models of the primer flow engine.

It defines the nodes a lesson is made of, the execution State that moves through
them, and the ActionRequest values the host renders. This package is kept pure and
free of I/O so that the runtime, the runner and the adapters can share it.

# Key Entities

  - Node: A step of the flow (Text, Question or Logic).
  - State: The runtime snapshot of a run (Current Node, Context, History).
  - ActionRequest: A structural representation of what the host should render or ask.
  - LifecycleHooks: Observability callbacks fired by the runtime.
*/
package domain
