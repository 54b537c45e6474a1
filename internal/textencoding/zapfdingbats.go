/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

// zapfDingbatsToUnicode is the ZapfDingbats internal encoding (PDF Appendix
// D), kept separate from glyphNameToUnicode per §4.A: a "a1".."a191" dingbat
// name must never be resolved through the ordinary glyph lookup, since a
// handful of names collide in spelling but not meaning across the two sets.
var zapfDingbatsToUnicode = map[string]uint16{
	"space": 0x0020,
	"a1": 0x2701, "a2": 0x2702, "a202": 0x2703, "a3": 0x2704, "a4": 0x260E,
	"a5": 0x2706, "a119": 0x2707, "a118": 0x2708, "a117": 0x2709, "a11": 0x261B,
	"a12": 0x261E, "a13": 0x270C, "a14": 0x270D, "a15": 0x270E, "a16": 0x270F,
	"a105": 0x2710, "a17": 0x2711, "a18": 0x2712, "a19": 0x2713, "a20": 0x2714,
	"a21": 0x2715, "a22": 0x2716, "a23": 0x2717, "a24": 0x2718, "a25": 0x2719,
	"a26": 0x271A, "a27": 0x271B, "a28": 0x271C, "a6": 0x271D, "a7": 0x271E,
	"a8": 0x271F, "a9": 0x2720, "a10": 0x2721, "a29": 0x2722, "a30": 0x2723,
	"a31": 0x2724, "a32": 0x2725, "a33": 0x2726, "a34": 0x2727, "a35": 0x2605,
	"a36": 0x2729, "a37": 0x272A, "a38": 0x272B, "a39": 0x272C, "a40": 0x272D,
	"a41": 0x272E, "a42": 0x272F, "a43": 0x2730, "a44": 0x2731, "a45": 0x2732,
	"a46": 0x2733, "a47": 0x2734, "a48": 0x2735, "a49": 0x2736, "a50": 0x2737,
	"a51": 0x2738, "a52": 0x2739, "a53": 0x273A, "a54": 0x273B, "a55": 0x273C,
	"a56": 0x273D, "a57": 0x273E, "a58": 0x273F, "a59": 0x2740, "a60": 0x2741,
	"a61": 0x2742, "a62": 0x2743, "a63": 0x2744, "a64": 0x2745, "a65": 0x2746,
	"a66": 0x2747, "a67": 0x2748, "a68": 0x2749, "a69": 0x274A, "a70": 0x274B,
	"a71": 0x25CF, "a72": 0x274D, "a73": 0x25A0, "a74": 0x274F, "a203": 0x2750,
	"a75": 0x2751, "a204": 0x2752, "a76": 0x25B2, "a77": 0x25BC, "a78": 0x25C6,
	"a79": 0x2756, "a81": 0x25D7, "a82": 0x2758, "a83": 0x2759, "a84": 0x275A,
	"a97": 0x275B, "a98": 0x275C, "a99": 0x275D, "a100": 0x275E,
}

// ZapfDingbatsToUnicode resolves a ZapfDingbats internal glyph name. It is
// intentionally a separate entry point from GlyphToUnicode.
func ZapfDingbatsToUnicode(name string) (uint16, bool) {
	r, ok := zapfDingbatsToUnicode[name]
	return r, ok
}
