// Package table turns delimited numeric text into a rectangular sample matrix.
//
// Fields may be separated by commas, semicolons or tabs, mixed freely within a
// file. Every field must be a plain decimal number with '.' as the decimal
// separator. A row is accepted only when all of its fields parse; anything
// else, including header lines, is dropped as a whole. Rows are kept in file
// order, which is the temporal order of the samples.
package table
