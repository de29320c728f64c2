// Package planetfile loads planet layouts from their text form.
//
// One record per line:
//
//	{(x,y);biome;quality}
//
// Braces and parentheses are delimiters. biome defaults to 0 and quality to
// 0.0 when omitted; quality uses '.' as decimal separator. Blank lines are
// skipped. After all records are read the toroidal topology is derived, so a
// loaded graph is ready for pathsearch.Search.
package planetfile
