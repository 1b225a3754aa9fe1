// Package msgformat compiles ICU-style message templates into reusable
// renderers.
//
// A message is literal text with variables in braces:
//
//	Hello {name}, you have {count, number} new messages.
//
// # Basic Usage
//
// Create a MessageFormat, compile once and render many times:
//
//	mf := msgformat.MustNew(msgformat.WithLocale("en"))
//	greet, err := mf.Compile("Hello {user.name}!")
//	out, err := greet(map[string]any{
//	    "user": map[string]any{"name": "Alice"},
//	})
//	// out: "Hello Alice!"
//
// # Template Syntax
//
// Variables name a path into the data record, optionally followed by a
// formatter and its arguments:
//
//	{name}                       plain value
//	{user.address.city}          nested value
//	{items[0]}                   list index
//	{user[field]}                key computed from another variable
//	{price, number, currency:EUR}
//	{gender, select, male{He} female{She} other{They}}
//
// A path that does not resolve renders as "undefined". Use \{ and \} for
// literal braces.
//
// # Built-in Formatters
//
//	date      {d, date}  {d, date, short}  {d, date, long}  {d, date, full}
//	time      {t, time}  {t, time, short}  {t, time, long}
//	number    {n, number}  {n, number, integer}  {n, number, percent}
//	          {n, number, currency}  {n, number, currency:EUR}
//	duration  {secs, duration} renders 123 as "2:03"
//	select    {key, select, a{...} b{...} other{...}}
//
// Option content inside select may contain variables:
//
//	{gender, select, female{{name} replied} other{They replied}}
//
// # Custom Formatters
//
// A Formatter receives the resolved value, the locale and the raw argument
// fragments. Custom formatters are consulted before the built-ins:
//
//	mf := msgformat.MustNew(msgformat.WithFormatter("upper",
//	    func(value any, _ language.Tag, _ ...any) string {
//	        return strings.ToUpper(msgformat.Stringify(value))
//	    }))
//
// # Error Handling
//
// Compile returns a parse error with line and column metadata for malformed
// templates. A Renderer fails only when a variable names a formatter that is
// not registered; this is checked when the Renderer runs.
package msgformat
