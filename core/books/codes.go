package books

// bookInfo describes one entry of a book-code list.
type bookInfo struct {
	Code   string // 3-letter SIL code
	Abbrev string // 2-letter abbreviation
	OSIS   string // OSIS book ID
}

// canonicalBooks is the 66-book Protestant canon in Genesis→Revelation order.
var canonicalBooks = []bookInfo{
	// Old Testament
	{"GEN", "GE", "Gen"},
	{"EXO", "EX", "Exod"},
	{"LEV", "LV", "Lev"},
	{"NUM", "NU", "Num"},
	{"DEU", "DT", "Deut"},
	{"JOS", "JS", "Josh"},
	{"JDG", "JG", "Judg"},
	{"RUT", "RT", "Ruth"},
	{"1SA", "1S", "1Sam"},
	{"2SA", "2S", "2Sam"},
	{"1KI", "1K", "1Kgs"},
	{"2KI", "2K", "2Kgs"},
	{"1CH", "1C", "1Chr"},
	{"2CH", "2C", "2Chr"},
	{"EZR", "ER", "Ezra"},
	{"NEH", "NH", "Neh"},
	{"EST", "ES", "Esth"},
	{"JOB", "JB", "Job"},
	{"PSA", "PS", "Ps"},
	{"PRO", "PR", "Prov"},
	{"ECC", "EC", "Eccl"},
	{"SNG", "SS", "Song"},
	{"ISA", "IS", "Isa"},
	{"JER", "JR", "Jer"},
	{"LAM", "LM", "Lam"},
	{"EZK", "EK", "Ezek"},
	{"DAN", "DN", "Dan"},
	{"HOS", "HS", "Hos"},
	{"JOL", "JL", "Joel"},
	{"AMO", "AM", "Amos"},
	{"OBA", "OB", "Obad"},
	{"JON", "JH", "Jonah"},
	{"MIC", "MC", "Mic"},
	{"NAM", "NM", "Nah"},
	{"HAB", "HK", "Hab"},
	{"ZEP", "ZP", "Zeph"},
	{"HAG", "HG", "Hag"},
	{"ZEC", "ZC", "Zech"},
	{"MAL", "ML", "Mal"},
	// New Testament
	{"MAT", "MT", "Matt"},
	{"MRK", "MK", "Mark"},
	{"LUK", "LK", "Luke"},
	{"JHN", "JN", "John"},
	{"ACT", "AC", "Acts"},
	{"ROM", "RM", "Rom"},
	{"1CO", "1O", "1Cor"},
	{"2CO", "2O", "2Cor"},
	{"GAL", "GL", "Gal"},
	{"EPH", "EP", "Eph"},
	{"PHP", "PP", "Phil"},
	{"COL", "CL", "Col"},
	{"1TH", "1H", "1Thess"},
	{"2TH", "2H", "2Thess"},
	{"1TI", "1T", "1Tim"},
	{"2TI", "2T", "2Tim"},
	{"TIT", "TT", "Titus"},
	{"PHM", "PM", "Phlm"},
	{"HEB", "HB", "Heb"},
	{"JAS", "JM", "Jas"},
	{"1PE", "1P", "1Pet"},
	{"2PE", "2P", "2Pet"},
	{"1JN", "1J", "1John"},
	{"2JN", "2J", "2John"},
	{"3JN", "3J", "3John"},
	{"JUD", "JD", "Jude"},
	{"REV", "RV", "Rev"},
}

// deuterocanonicalBooks is appended after Revelation when enabled.
var deuterocanonicalBooks = []bookInfo{
	{"TOB", "TB", "Tob"},
	{"JDT", "JT", "Jdt"},
	{"ESG", "EG", "EsthGr"},
	{"WIS", "WS", "Wis"},
	{"SIR", "SR", "Sir"},
	{"BAR", "BR", "Bar"},
	{"LJE", "LJ", "EpJer"},
	{"S3Y", "S3", "PrAzar"},
	{"SUS", "SU", "Sus"},
	{"BEL", "BL", "Bel"},
	{"1MA", "1M", "1Macc"},
	{"2MA", "2M", "2Macc"},
	{"3MA", "3M", "3Macc"},
	{"4MA", "4M", "4Macc"},
	{"1ES", "1E", "1Esd"},
	{"2ES", "2E", "2Esd"},
	{"MAN", "MN", "PrMan"},
	{"PS2", "P2", "AddPs"},
	{"ODA", "OD", "Odes"},
	{"PSS", "PX", "PssSol"},
	{"JSA", "JA", "JoshA"},
	{"JDB", "JV", "JudgB"},
	{"TBS", "TS", "TobS"},
	{"SST", "ST", "SusTh"},
	{"DNT", "DG", "DanGr"},
	{"BLT", "BT", "BelTh"},
}
