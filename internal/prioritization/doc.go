// Package prioritization scores, ranks and summarizes tasks against a single
// reference instant. Every function is pure: callers capture now once per
// request and pass it to every call made for that request.
package prioritization
