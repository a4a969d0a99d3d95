package mrformat

// ExposureRecord is one row of the TwoSampleMR-style exposure table. Field
// order determines output column order.
type ExposureRecord struct {
	Chr          string `csv:"chr.exposure"`
	Pos          string `csv:"pos.exposure"`
	Beta         string `csv:"beta.exposure"`
	SE           string `csv:"se.exposure"`
	PVal         string `csv:"pval.exposure"`
	SNP          string `csv:"SNP"`
	EffectAllele string `csv:"effect_allele.exposure"`
	OtherAllele  string `csv:"other_allele.exposure"`
	ID           string `csv:"id.exposure"`
	Exposure     string `csv:"exposure"`
	EAF          string `csv:"eaf.exposure"`
	MRKeep       string `csv:"mr_keep.exposure"`
	PValOrigin   string `csv:"pval_origin.exposure"`
	DataSource   string `csv:"data_source.exposure"`
}

// OutcomeRecord is one row of the TwoSampleMR-style outcome table.
type OutcomeRecord struct {
	Chr          string `csv:"chr.outcome"`
	Pos          string `csv:"pos.outcome"`
	Beta         string `csv:"beta.outcome"`
	SE           string `csv:"se.outcome"`
	PVal         string `csv:"pval.outcome"`
	SNP          string `csv:"SNP"`
	EffectAllele string `csv:"effect_allele.outcome"`
	OtherAllele  string `csv:"other_allele.outcome"`
	EAF          string `csv:"eaf.outcome"`
	Outcome      string `csv:"outcome"`
	ID           string `csv:"id.outcome"`
	MRKeep       string `csv:"mr_keep.outcome"`
}
