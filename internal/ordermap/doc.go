// Package ordermap loads the order map: for every schema complex type that
// declares an ordered content model, the names of its immediate child elements
// in declaration order.
//
// The map is produced offline from the XSD and persisted as a JSON (or YAML)
// document of the form
//
//	{
//	  "PraticaType": ["Intestatario", "Impianto", "Allegati"],
//	  "ImpiantoType": ["Codice", "QuotaCE", "AlfaPC"]
//	}
//
// Types without ordered content are absent from the document. A missing file is
// treated as an empty map so that ordering degrades to a no-op; a file that
// exists but cannot be parsed or fails validation is an error.
package ordermap
