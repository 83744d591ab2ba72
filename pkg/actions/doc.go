// Package actions holds the reusable rendering actions that backends bind
// to command names.
//
// Every action implements document.Action. Actions receive the command's
// optionals and arguments unrendered and decide themselves what to render,
// where and how often. Arity violations are returned as ARITY errors.
package actions
