package qp

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("qp")

// ErrInverseUnimplemented is returned by Op.Inverse for every input. The
// field has no inverse routine; Invertible is the capability check for
// callers that would need one.
var ErrInverseUnimplemented = Error.New("inverse unimplemented")
