/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

// macExpertTable builds MacExpertEncoding. MacExpertEncoding names small-caps,
// oldstyle-figure and fraction variants that have no ordinary Unicode
// codepoint mapping through a simple byte table at all (they're only
// addressable by glyph name against an Expert-encoded font program), so this
// table populates only the space position (0x20) and reports every other
// position as undefined. A font that declares MacExpertEncoding without a
// Differences array naming every glyph it actually draws extracts as mostly
// blank.
func macExpertTable() EncodingTable {
	var t EncodingTable
	t[0x20] = 0x0020 // space is the one glyph Expert shares unconditionally
	return t
}
