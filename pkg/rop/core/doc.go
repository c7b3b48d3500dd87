// Package core contains pipeline plumbing utilities: pending outcomes and how
// to await them, channel helpers, worker configuration via context, and the
// locomotive that drives stages. It does not define business logic; instead it
// provides the scaffolding for packages async and lite.
package core
