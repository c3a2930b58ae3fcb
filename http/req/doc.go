/*
Package req decodes and validates the payload of an HTTP request.

It supports JSON-encoded bodies and payloads encoded in query parameters.
In both cases, package req parses payloads into a pointer to a struct
whose tags match keys in the payload to fields ("json" or "schema")
and set the rules the data must meet ("validate").

Errors are translated to basecamp sentinel errors,
so handlers see the same errors whichever encoding a request used.
A payload failing its rules returns ValidationErrors, which wrap basecamp.ErrNotValid.
*/
package req
