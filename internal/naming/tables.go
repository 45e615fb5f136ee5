// Package naming converts bibliographic fields into filename tokens.
//
// The stop-word and acronym tables are explicit values rather than
// package globals so that callers can pass customized copies; the
// defaults are constructed once and never mutated.
package naming

// Tables holds the reference data consulted by the title canonicalizer:
// words that never count as content words, and terms whose canonical
// casing must be preserved verbatim.
type Tables struct {
	StopWords    map[string]bool
	PreserveCase map[string]string // lowercase term -> canonical casing
}

// defaultStopWords are skipped when selecting title content words.
var defaultStopWords = []string{
	"a", "an", "the", "of", "for", "in", "on", "at", "to", "and", "or",
	"by", "with", "from", "as", "is", "are", "was", "were", "that",
	"this", "but", "not", "via", "into", "vs",
}

// defaultPreserveCase maps lowercase terms to their canonical display
// casing. Extend per research domain via Tables.WithAcronyms.
var defaultPreserveCase = map[string]string{
	// Nucleic acids and biology
	"rna": "RNA", "dna": "DNA", "mrna": "mRNA", "mrnas": "mRNAs",
	"rrna": "rRNA", "trna": "tRNA", "rnas": "RNAs",
	"snp": "SNP", "snps": "SNPs", "pcr": "PCR",
	// Structural biology
	"nmr": "NMR", "pdb": "PDB", "xfel": "XFEL",
	"cryo": "Cryo", "cryoem": "CryoEM",
	"saxs": "SAXS", "xray": "Xray",
	// Drug discovery
	"qsar": "QSAR",
	// Dimensions
	"3d": "3D", "2d": "2D", "1d": "1D",
	// Virus / disease
	"sars": "SARS", "cov": "CoV", "covid": "COVID",
	"hiv": "HIV", "mpro": "Mpro",
	// Roman numerals
	"ii": "II", "iii": "III", "iv": "IV", "vi": "VI",
	// Software / databases
	"emdna": "emDNA", "3dna": "3DNA", "g4rna": "G4RNA",
	"g4catchall": "G4Catchall", "vfoldla": "VfoldLA",
	"rnapolis": "RNApolis", "rnapdbee": "RNApdbee",
	"clarna": "ClaRNA", "onquadro": "ONQUADRO",
	"gaia": "GAIA", "qparse": "QPARSE", "eltetrado": "ElTetrado",
	"fr3d": "FR3D", "pymod": "PyMod", "farfar2": "FARFAR2",
	"lammps": "LAMMPS", "gromacs": "GROMACS", "pymol": "PyMOL",
	"phenix": "PHENIX", "coot": "Coot", "chimera": "Chimera",
	"rosetta": "Rosetta",
	// Compound terms created by merging single-letter hyphen prefixes
	"gquadruplex": "GQuadruplex", "gquadruplexes": "GQuadruplexes",
	"pfarfar2": "PFARFAR2",
	"g4":       "G4",
	// Compound hyphenated words that get merged
	"longlooped":    "LongLooped",
	"assemblybased": "AssemblyBased",
	"topologybased": "TopologyBased",
}

// DefaultTables returns a fresh copy of the built-in reference tables.
// Each call returns independent maps, so callers may extend the result
// without affecting other callers.
func DefaultTables() Tables {
	stop := make(map[string]bool, len(defaultStopWords))
	for _, w := range defaultStopWords {
		stop[w] = true
	}
	preserve := make(map[string]string, len(defaultPreserveCase))
	for k, v := range defaultPreserveCase {
		preserve[k] = v
	}
	return Tables{StopWords: stop, PreserveCase: preserve}
}

// WithStopWords returns a copy of t with the given words added to the
// stop-word set. Words are matched case-insensitively.
func (t Tables) WithStopWords(words ...string) Tables {
	out := t.clone()
	for _, w := range words {
		if w = lowerTrim(w); w != "" {
			out.StopWords[w] = true
		}
	}
	return out
}

// WithAcronyms returns a copy of t with the given canonical casings
// added. Keys are lowercased; values are kept verbatim.
func (t Tables) WithAcronyms(acronyms map[string]string) Tables {
	out := t.clone()
	for k, v := range acronyms {
		if k = lowerTrim(k); k != "" && v != "" {
			out.PreserveCase[k] = v
		}
	}
	return out
}

func (t Tables) clone() Tables {
	stop := make(map[string]bool, len(t.StopWords))
	for k, v := range t.StopWords {
		stop[k] = v
	}
	preserve := make(map[string]string, len(t.PreserveCase))
	for k, v := range t.PreserveCase {
		preserve[k] = v
	}
	return Tables{StopWords: stop, PreserveCase: preserve}
}
