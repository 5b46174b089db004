// Package credential holds the stateless building blocks of authentication:
// input validators, password digests, random tokens and cookie parsing.
package credential
