// Package erroz defines structured error kinds with a JSend identity.
//
// An error kind is declared once from a Definition and becomes a Class.
// Every instance created from a Class carries the same name, code, status
// and status code, a message that may be rendered from per-instance data,
// the data itself and a stack trace that starts at the caller.
//
// # Defining errors
//
//	var ErrNotFound = erroz.MustDefine(&erroz.Definition{
//	    Name:       "NotFound",
//	    StatusCode: erroz.Int(404),
//	    Template:   "%resource (%id) not found",
//	})
//
//	var ErrDuplicate = erroz.MustDefine(&erroz.Definition{
//	    Name:       "Duplicate",
//	    StatusCode: erroz.Int(409),
//	    MessageFunc: func(d erroz.Data) string {
//	        return fmt.Sprintf("Resource %v (%v) already exists", d["resource"], d["id"])
//	    },
//	})
//
// Defaults are resolved at definition time:
//
//   - Code defaults to the slug of Name ("NotFound" becomes "not-found")
//   - StatusCode defaults to 500
//   - Status is derived from StatusCode: 2xx success, 4xx fail, 5xx error
//
// A status code outside those ranges requires an explicit Status. Invalid
// definitions fail with a *ConfigError.
//
// # Raising errors
//
//	return ErrNotFound.New(erroz.Data{"resource": "User", "id": 1})
//	// NotFound: User (1) not found
//
// # Matching errors
//
// Identity is structural. Class.Matches compares code and status, so it
// works for instances, wrapped errors and JSend payloads decoded from JSON:
//
//	if ErrNotFound.Matches(err) {
//	    // handle not found
//	}
//
// # Serialization
//
// Instances marshal to JSend:
//
//	{"status":"fail","code":"not-found","message":"User (1) not found","data":{"id":1,"resource":"User"}}
//
// The status code is not part of the payload. Use StatusCodeOf to set the
// transport status, and ToJSend to turn any error into a Response.
//
// # Configuration
//
// A Factory carries options shared by all classes it defines, such as a
// custom template Renderer or WithIncludeStack. Options are fixed when the
// Factory is created. Config loads the file-configurable options from viper.
//
// # Logging
//
// *Error implements slog.LogValuer and zerolog.LogObjectMarshaler, so
// instances log as structured groups.
package erroz
