// Package verify implements the "verify" command: a self-check of the
// compiled-in round table. It reports duplicate keys, empty rounds, and
// malformed design names, so a bad table edit fails loudly before anyone
// dispatches with it.
package verify
