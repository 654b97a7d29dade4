/*
Package ports defines the driven ports (interfaces) for the primer engine.

  - GraphLoader: Responsible for loading Node definitions (e.g., from the DSL or YAML).
*/
package ports
