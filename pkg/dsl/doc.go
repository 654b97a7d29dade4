/*
Package dsl provides a fluent Go builder for primer flows.

It lets a flow be declared in code instead of YAML, which keeps the lesson type-checked
and easy to test.

	b := dsl.New()

	b.Add("start").
		Text("Welcome!").
		Go("ask_name")

	b.Add("ask_name").
		Question("What is your name? ").
		SaveTo("user_name").
		Go("end")

	b.Add("end").
		Text("Goodbye, {{ .user_name }}!")

	loader, err := b.Build()
*/
package dsl
