package multiling

// Built-in name tables, indexed by book number - 1. Entries past the end of
// a table (the deuterocanon in Spanish) fall through to the next writing
// system in priority order.

var englishNames = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Songs", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi",
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy",
	"2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John",
	"Jude", "Revelation",
	// Deuterocanon
	"Tobit", "Judith", "Esther (Greek)", "Wisdom of Solomon", "Sirach",
	"Baruch", "Letter of Jeremiah", "Song of the Three Young Men", "Susanna", "Bel and the Dragon",
	"1 Maccabees", "2 Maccabees", "3 Maccabees", "4 Maccabees", "1 Esdras",
	"2 Esdras", "Prayer of Manasseh", "Psalm 151", "Odes", "Psalms of Solomon",
	"Joshua (A)", "Judges (B)", "Tobit (S)", "Susanna (Theodotion)", "Daniel (Greek)",
	"Bel (Theodotion)",
}

var englishAbbrevs = []string{
	"Gen", "Exo", "Lev", "Num", "Deu",
	"Jos", "Jdg", "Rut", "1Sa", "2Sa",
	"1Ki", "2Ki", "1Ch", "2Ch", "Ezr",
	"Neh", "Est", "Job", "Psa", "Pro",
	"Ecc", "Sng", "Isa", "Jer", "Lam",
	"Ezk", "Dan", "Hos", "Jol", "Amo",
	"Oba", "Jon", "Mic", "Nam", "Hab",
	"Zep", "Hag", "Zec", "Mal",
	"Mat", "Mrk", "Luk", "Jhn", "Act",
	"Rom", "1Co", "2Co", "Gal", "Eph",
	"Php", "Col", "1Th", "2Th", "1Ti",
	"2Ti", "Tit", "Phm", "Heb", "Jas",
	"1Pe", "2Pe", "1Jn", "2Jn", "3Jn",
	"Jud", "Rev",
	"Tob", "Jdt", "EsG", "Wis", "Sir",
	"Bar", "LJe", "S3Y", "Sus", "Bel",
	"1Ma", "2Ma", "3Ma", "4Ma", "1Es",
	"2Es", "Man", "Ps2", "Oda", "PsS",
	"JsA", "JdB", "TbS", "SsT", "DnT",
	"BlT",
}

var spanishNames = []string{
	"Génesis", "Éxodo", "Levítico", "Números", "Deuteronomio",
	"Josué", "Jueces", "Rut", "1 Samuel", "2 Samuel",
	"1 Reyes", "2 Reyes", "1 Crónicas", "2 Crónicas", "Esdras",
	"Nehemías", "Ester", "Job", "Salmos", "Proverbios",
	"Eclesiastés", "Cantares", "Isaías", "Jeremías", "Lamentaciones",
	"Ezequiel", "Daniel", "Oseas", "Joel", "Amós",
	"Abdías", "Jonás", "Miqueas", "Nahúm", "Habacuc",
	"Sofonías", "Hageo", "Zacarías", "Malaquías",
	"Mateo", "Marcos", "Lucas", "Juan", "Hechos",
	"Romanos", "1 Corintios", "2 Corintios", "Gálatas", "Efesios",
	"Filipenses", "Colosenses", "1 Tesalonicenses", "2 Tesalonicenses", "1 Timoteo",
	"2 Timoteo", "Tito", "Filemón", "Hebreos", "Santiago",
	"1 Pedro", "2 Pedro", "1 Juan", "2 Juan", "3 Juan",
	"Judas", "Apocalipsis",
}

var spanishAbbrevs = []string{
	"Gén", "Éx", "Lev", "Núm", "Dt",
	"Jos", "Jue", "Rt", "1 S", "2 S",
	"1 R", "2 R", "1 Cr", "2 Cr", "Esd",
	"Neh", "Est", "Job", "Sal", "Pr",
	"Ec", "Cnt", "Is", "Jer", "Lm",
	"Ez", "Dn", "Os", "Jl", "Am",
	"Abd", "Jon", "Miq", "Nah", "Hab",
	"Sof", "Hag", "Zac", "Mal",
	"Mt", "Mr", "Lc", "Jn", "Hch",
	"Ro", "1 Co", "2 Co", "Gá", "Ef",
	"Fil", "Col", "1 Ts", "2 Ts", "1 Ti",
	"2 Ti", "Tit", "Flm", "He", "Stg",
	"1 P", "2 P", "1 Jn", "2 Jn", "3 Jn",
	"Jud", "Ap",
}
