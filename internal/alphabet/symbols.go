package alphabet

// DnaBase is a DNA nucleotide.
type DnaBase uint8

const (
	DnaA DnaBase = iota
	DnaC
	DnaG
	DnaT

	dnaBaseCount
)

// RnaBase is an RNA nucleotide.
type RnaBase uint8

const (
	RnaA RnaBase = iota
	RnaC
	RnaG
	RnaU

	rnaBaseCount
)

// AminoAcid is one of the 20 standard residues or the Stop marker.
type AminoAcid uint8

const (
	Ala AminoAcid = iota
	Arg
	Asn
	Asp
	Cys
	Gln
	Glu
	Gly
	His
	Ile
	Leu
	Lys
	Met
	Phe
	Pro
	Ser
	Thr
	Trp
	Tyr
	Val
	Stop

	aminoAcidCount
)

// Base-pairing partners, one entry per base.
var (
	dnaComplement = [dnaBaseCount]DnaBase{DnaA: DnaT, DnaC: DnaG, DnaG: DnaC, DnaT: DnaA}
	rnaComplement = [rnaBaseCount]RnaBase{RnaA: RnaU, RnaC: RnaG, RnaG: RnaC, RnaU: RnaA}

	transcription        = [dnaBaseCount]RnaBase{DnaA: RnaA, DnaC: RnaC, DnaG: RnaG, DnaT: RnaU}
	reverseTranscription = [rnaBaseCount]DnaBase{RnaA: DnaA, RnaC: DnaC, RnaG: DnaG, RnaU: DnaT}
)

func (DnaBase) Kind() Kind { return KindDNA }

func (b DnaBase) String() string { return string(DNA.Letter(b)) }

// Complement returns the base-pairing partner (A<->T, C<->G).
func (b DnaBase) Complement() DnaBase { return dnaComplement[b] }

// Transcribe returns the RNA base produced from b (T becomes U).
func (b DnaBase) Transcribe() RnaBase { return transcription[b] }

func (RnaBase) Kind() Kind { return KindRNA }

func (b RnaBase) String() string { return string(RNA.Letter(b)) }

// Complement returns the base-pairing partner (A<->U, C<->G).
func (b RnaBase) Complement() RnaBase { return rnaComplement[b] }

// ReverseTranscribe returns the DNA base b was transcribed from.
func (b RnaBase) ReverseTranscribe() DnaBase { return reverseTranscription[b] }

func (AminoAcid) Kind() Kind { return KindProtein }

func (a AminoAcid) String() string { return string(Protein.Letter(a)) }

// IsStop reports whether a is the stop marker.
func (a AminoAcid) IsStop() bool { return a == Stop }
