// Package card defines the normalized card model: the closed enumerations a
// card is built from, the lookup functions that map raw strings onto them,
// the rules-text normalizer and the four card variants.
//
// Every Parse function is total. A value outside the closed set returns an
// *InvalidEnumValueError carrying the exact raw value; nothing is coerced.
package card
