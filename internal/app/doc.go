// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the session lifecycle (load, register,
// finalize, validate, report), decoupled from any specific entrypoint like a
// CLI.
package app
