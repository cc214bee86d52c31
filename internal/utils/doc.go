// Package utils holds small helpers shared by the client and the stub
// backend: the resty JSON client, JSON response writers, identity token
// parsing and local id generation.
package utils
