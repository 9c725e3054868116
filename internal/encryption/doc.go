// Package encryption implements the authenticated cipher: AES-256-CBC with
// PKCS#7 padding, encrypt-then-MAC with HMAC-SHA256, and the strict
// verify-then-decrypt ordering on the way back. It also provides the base64
// codec for the persisted envelope and tag artifacts.
package encryption
