package glyph

// Payloads are written as marker bit, rows (top first), then padding.
// Every table entry carries the marker.

// standard glyphs, 5 rows x 3 columns
const (
	spacePixels      uint16 = 0b1_000_000_000_000_000
	exclPixels       uint16 = 0b1_010_010_010_000_010
	quotePixels      uint16 = 0b1_101_101_000_000_000
	apostrophePixels uint16 = 0b1_010_010_000_000_000
	percentPixels    uint16 = 0b1_101_001_010_100_101
	caretPixels      uint16 = 0b1_010_101_000_000_000
	asteriskPixels   uint16 = 0b1_101_010_101_000_000
	leftParenPixels  uint16 = 0b1_001_010_010_010_001
	rightParenPixels uint16 = 0b1_100_010_010_010_100
	plusPixels       uint16 = 0b1_000_010_111_010_000
	minusPixels      uint16 = 0b1_000_000_111_000_000
	equalsPixels     uint16 = 0b1_000_111_000_111_000
	underPixels      uint16 = 0b1_000_000_000_000_111
	slashPixels      uint16 = 0b1_001_001_010_100_100
	questionPixels   uint16 = 0b1_111_001_011_000_010

	aPixels uint16 = 0b1_111_101_111_101_101
	bPixels uint16 = 0b1_110_101_110_101_110
	cPixels uint16 = 0b1_111_100_100_100_111
	dPixels uint16 = 0b1_110_101_101_101_110
	ePixels uint16 = 0b1_111_100_111_100_111
	fPixels uint16 = 0b1_111_100_111_100_100
	gPixels uint16 = 0b1_111_100_101_101_111
	hPixels uint16 = 0b1_101_101_111_101_101
	iPixels uint16 = 0b1_111_010_010_010_111
	jPixels uint16 = 0b1_111_010_010_010_110
	kPixels uint16 = 0b1_101_101_110_101_101
	lPixels uint16 = 0b1_100_100_100_100_111
	nPixels uint16 = 0b1_110_101_101_101_101
	oPixels uint16 = 0b1_111_101_101_101_111
	pPixels uint16 = 0b1_111_101_111_100_100
	qPixels uint16 = 0b1_111_101_101_111_001
	rPixels uint16 = 0b1_111_101_110_101_101
	sPixels uint16 = 0b1_111_100_111_001_111
	tPixels uint16 = 0b1_111_010_010_010_010
	uPixels uint16 = 0b1_101_101_101_101_111
	vPixels uint16 = 0b1_101_101_101_101_010
	xPixels uint16 = 0b1_101_101_010_101_101
	yPixels uint16 = 0b1_101_101_101_010_010
	zPixels uint16 = 0b1_111_001_010_100_111

	zeroPixels  uint16 = 0b1_111_101_101_101_111
	onePixels   uint16 = 0b1_110_010_010_010_111
	twoPixels   uint16 = 0b1_111_001_011_100_111
	threePixels uint16 = 0b1_111_001_111_001_111
	fourPixels  uint16 = 0b1_101_101_111_001_001
	fivePixels  uint16 = 0b1_111_100_111_001_110
	sixPixels   uint16 = 0b1_111_100_111_101_111
	sevenPixels uint16 = 0b1_111_001_010_010_010
	eightPixels uint16 = 0b1_111_101_111_101_111
	ninePixels  uint16 = 0b1_111_101_111_001_001

	// checkerboard for anything not in the table
	unknownPixels uint16 = 0b1_101_010_101_010_101
)

// wide glyphs, 5 rows x 5 columns, 6 trailing unused bits
const (
	hashPixels      uint32 = 0b1_01010_11111_01010_11111_01010_000000
	dollarPixels    uint32 = 0b1_01110_10100_01110_00101_01110_000000
	atPixels        uint32 = 0b1_11111_10001_10111_10110_11111_000000
	ampersandPixels uint32 = 0b1_01100_10000_01101_10010_01101_000000

	mPixels uint32 = 0b1_11011_10101_10101_10001_10001_000000
	wPixels uint32 = 0b1_10001_10001_10101_10101_11011_000000
)

// small glyphs, 3 rows x 2 columns, 1 trailing unused bit
const (
	dotPixels   uint8 = 0b1_00_00_10_0
	commaPixels uint8 = 0b1_00_01_10_0
	colonPixels uint8 = 0b1_10_00_10_0
)

// Placeholder is what Encode returns for every unsupported byte
var Placeholder = StandardGlyph(unknownPixels)

// keyed by upper case
var glyphValues = map[byte]Glyph{
	' ':  StandardGlyph(spacePixels),
	'!':  StandardGlyph(exclPixels),
	'"':  StandardGlyph(quotePixels),
	'#':  WideGlyph(hashPixels),
	'$':  WideGlyph(dollarPixels),
	'%':  StandardGlyph(percentPixels),
	'&':  WideGlyph(ampersandPixels),
	'\'': StandardGlyph(apostrophePixels),
	'(':  StandardGlyph(leftParenPixels),
	')':  StandardGlyph(rightParenPixels),
	'*':  StandardGlyph(asteriskPixels),
	'+':  StandardGlyph(plusPixels),
	',':  SmallGlyph(commaPixels),
	'-':  StandardGlyph(minusPixels),
	'.':  SmallGlyph(dotPixels),
	'/':  StandardGlyph(slashPixels),
	':':  SmallGlyph(colonPixels),
	'=':  StandardGlyph(equalsPixels),
	'?':  StandardGlyph(questionPixels),
	'@':  WideGlyph(atPixels),
	'^':  StandardGlyph(caretPixels),
	'_':  StandardGlyph(underPixels),

	'0': StandardGlyph(zeroPixels),
	'1': StandardGlyph(onePixels),
	'2': StandardGlyph(twoPixels),
	'3': StandardGlyph(threePixels),
	'4': StandardGlyph(fourPixels),
	'5': StandardGlyph(fivePixels),
	'6': StandardGlyph(sixPixels),
	'7': StandardGlyph(sevenPixels),
	'8': StandardGlyph(eightPixels),
	'9': StandardGlyph(ninePixels),

	'A': StandardGlyph(aPixels),
	'B': StandardGlyph(bPixels),
	'C': StandardGlyph(cPixels),
	'D': StandardGlyph(dPixels),
	'E': StandardGlyph(ePixels),
	'F': StandardGlyph(fPixels),
	'G': StandardGlyph(gPixels),
	'H': StandardGlyph(hPixels),
	'I': StandardGlyph(iPixels),
	'J': StandardGlyph(jPixels),
	'K': StandardGlyph(kPixels),
	'L': StandardGlyph(lPixels),
	'M': WideGlyph(mPixels),
	'N': StandardGlyph(nPixels),
	'O': StandardGlyph(oPixels),
	'P': StandardGlyph(pPixels),
	'Q': StandardGlyph(qPixels),
	'R': StandardGlyph(rPixels),
	'S': StandardGlyph(sPixels),
	'T': StandardGlyph(tPixels),
	'U': StandardGlyph(uPixels),
	'V': StandardGlyph(vPixels),
	'W': WideGlyph(wPixels),
	'X': StandardGlyph(xPixels),
	'Y': StandardGlyph(yPixels),
	'Z': StandardGlyph(zPixels),
}
