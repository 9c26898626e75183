// Package pacing provides a token-bucket Pacer used to space out the staged
// reveal of recommendation results.
package pacing
