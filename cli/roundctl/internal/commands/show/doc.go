// Package show implements the "show" command: print a round's design names
// one per line without launching the viewer. Useful for piping a round into
// other tools and for eyeballing what a dispatch would forward.
package show
