// The convert subpackage ties the rest of the module together: it
// loads a font into a scoped [Session] and exports every code point
// of the glyph grid as an individual PNG file.
//
// Usage:
//   session, err := convert.Open(config, logger)
//   if err != nil { ... }
//   defer session.Close()
//   summary, err := session.Run()
package convert
