package mrformat

// The column positions and constant labels below are dataset-specific
// configuration for the MiBioGen exposure GWAS and the FinnGen R11
// preeclampsia outcome GWAS. They describe those releases' file layouts and
// are not derived at runtime.

// 0-based source columns selected for the outcome table, in output order:
// chr, pos, beta, se, pval, SNP, effect allele, other allele, eaf.
var outcomeSourceColumns = []int{24, 25, 32, 33, 30, 28, 27, 26, 34}

// 0-based source columns selected for the exposure table, in output order:
// chr, pos, beta, se, pval, SNP, effect allele, other allele.
var exposureSourceColumns = []int{0, 3, 18, 19, 21, 2, 17, 16}

// colExposureLabel carries the exposure trait name (the bacterial taxon).
const colExposureLabel = 12

const (
	outcomeTrait   = "PE"
	outcomeDataset = "finngen_R11_O15_PREECLAMPS"

	exposureDataset    = "MiBioGen"
	exposureEAF        = "NA"
	exposurePValOrigin = "inferred"
)

func maxColumn(cols []int, extra ...int) int {
	max := 0
	for _, c := range cols {
		if c > max {
			max = c
		}
	}
	for _, c := range extra {
		if c > max {
			max = c
		}
	}

	return max
}
