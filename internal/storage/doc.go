// Package storage implements the persistent key/value store backing all
// timediary records. Each top-level record (users, diaries, currentUser,
// stats) lives under a single key and is rewritten wholesale on mutation;
// there is no atomicity across keys and the last writer wins.
package storage
