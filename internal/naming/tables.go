package naming

import "maps"

var defaultAcronyms = map[string]string{
	"ce":  "CE",
	"pc":  "PC",
	"dtx": "DTX",
	"id":  "ID",
	"gps": "GPS",
	"rf":  "RF",
}

var defaultSpecialCases = map[string]string{
	"quota_ce":                     "QuotaCE",
	"quotace":                      "QuotaCE",
	"alfa_pc":                      "AlfaPC",
	"alfapc":                       "AlfaPC",
	"alfa_dtx":                     "AlfaDTX",
	"alfadtx":                      "AlfaDTX",
	"fpr":                          "FPR",
	"ftc":                          "FTC",
	"num_portanti_attivabili":      "NumPortantiAttivabili",
	"potenza_totale_connettore":    "PotenzaTotaleConnettore",
	"potenza_irradiata_connettore": "PotenzaIrradiataConnettore",
}

// Acronyms returns a copy of the built-in acronym table.
func Acronyms() map[string]string {
	return maps.Clone(defaultAcronyms)
}

// SpecialCases returns a copy of the built-in override table.
func SpecialCases() map[string]string {
	return maps.Clone(defaultSpecialCases)
}
