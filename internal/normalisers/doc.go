// Package normalisers contains the boundary that converts loosely-typed
// records from the REST API into canonical domain entities.
//
// The API serves numeric fields inconsistently (numbers, numeric strings,
// nulls) depending on which backend path produced them. Normalisation
// happens exactly once, here; no downstream component re-interprets raw
// fields.
package normalisers
