// Package fasta reads and writes the FASTA records pastar aligns and
// emits. Reading uppercases every residue and groups headerless leading
// records under an empty name. Writing emits one ">name" header per
// sequence followed by its (possibly gapped) body.
package fasta
