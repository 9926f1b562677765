package keys

// Book describes one book of the canon as presented to members.
type Book struct {
	Name      string `json:"name" yaml:"name"`
	Abbrev    string `json:"abbrev" yaml:"abbrev"`
	Chapters  int    `json:"chapters" yaml:"chapters"`
	Testament string `json:"testament" yaml:"testament"`
}

const (
	TestamentOld = "old"
	TestamentNew = "new"
)

// TotalChapters is the chapter count of the whole canon, used by the reading
// progress ranking.
const TotalChapters = 1189

// Canon lists the 66 books in reading order, Portuguese naming.
var Canon = []Book{
	{Name: "Gênesis", Abbrev: "gn", Chapters: 50, Testament: TestamentOld},
	{Name: "Êxodo", Abbrev: "ex", Chapters: 40, Testament: TestamentOld},
	{Name: "Levítico", Abbrev: "lv", Chapters: 27, Testament: TestamentOld},
	{Name: "Números", Abbrev: "nm", Chapters: 36, Testament: TestamentOld},
	{Name: "Deuteronômio", Abbrev: "dt", Chapters: 34, Testament: TestamentOld},
	{Name: "Josué", Abbrev: "js", Chapters: 24, Testament: TestamentOld},
	{Name: "Juízes", Abbrev: "jz", Chapters: 21, Testament: TestamentOld},
	{Name: "Rute", Abbrev: "rt", Chapters: 4, Testament: TestamentOld},
	{Name: "1 Samuel", Abbrev: "1sm", Chapters: 31, Testament: TestamentOld},
	{Name: "2 Samuel", Abbrev: "2sm", Chapters: 24, Testament: TestamentOld},
	{Name: "1 Reis", Abbrev: "1rs", Chapters: 22, Testament: TestamentOld},
	{Name: "2 Reis", Abbrev: "2rs", Chapters: 25, Testament: TestamentOld},
	{Name: "1 Crônicas", Abbrev: "1cr", Chapters: 29, Testament: TestamentOld},
	{Name: "2 Crônicas", Abbrev: "2cr", Chapters: 36, Testament: TestamentOld},
	{Name: "Esdras", Abbrev: "ed", Chapters: 10, Testament: TestamentOld},
	{Name: "Neemias", Abbrev: "ne", Chapters: 13, Testament: TestamentOld},
	{Name: "Ester", Abbrev: "et", Chapters: 10, Testament: TestamentOld},
	{Name: "Jó", Abbrev: "job", Chapters: 42, Testament: TestamentOld},
	{Name: "Salmos", Abbrev: "sl", Chapters: 150, Testament: TestamentOld},
	{Name: "Provérbios", Abbrev: "pv", Chapters: 31, Testament: TestamentOld},
	{Name: "Eclesiastes", Abbrev: "ec", Chapters: 12, Testament: TestamentOld},
	{Name: "Cantares", Abbrev: "ct", Chapters: 8, Testament: TestamentOld},
	{Name: "Isaías", Abbrev: "is", Chapters: 66, Testament: TestamentOld},
	{Name: "Jeremias", Abbrev: "jr", Chapters: 52, Testament: TestamentOld},
	{Name: "Lamentações", Abbrev: "lm", Chapters: 5, Testament: TestamentOld},
	{Name: "Ezequiel", Abbrev: "ez", Chapters: 48, Testament: TestamentOld},
	{Name: "Daniel", Abbrev: "dn", Chapters: 12, Testament: TestamentOld},
	{Name: "Oséias", Abbrev: "os", Chapters: 14, Testament: TestamentOld},
	{Name: "Joel", Abbrev: "jl", Chapters: 3, Testament: TestamentOld},
	{Name: "Amós", Abbrev: "am", Chapters: 9, Testament: TestamentOld},
	{Name: "Obadias", Abbrev: "ob", Chapters: 1, Testament: TestamentOld},
	{Name: "Jonas", Abbrev: "jn", Chapters: 4, Testament: TestamentOld},
	{Name: "Miquéias", Abbrev: "mq", Chapters: 7, Testament: TestamentOld},
	{Name: "Naum", Abbrev: "na", Chapters: 3, Testament: TestamentOld},
	{Name: "Habacuque", Abbrev: "hc", Chapters: 3, Testament: TestamentOld},
	{Name: "Sofonias", Abbrev: "sf", Chapters: 3, Testament: TestamentOld},
	{Name: "Ageu", Abbrev: "ag", Chapters: 2, Testament: TestamentOld},
	{Name: "Zacarias", Abbrev: "zc", Chapters: 14, Testament: TestamentOld},
	{Name: "Malaquias", Abbrev: "ml", Chapters: 4, Testament: TestamentOld},
	{Name: "Mateus", Abbrev: "mt", Chapters: 28, Testament: TestamentNew},
	{Name: "Marcos", Abbrev: "mc", Chapters: 16, Testament: TestamentNew},
	{Name: "Lucas", Abbrev: "lc", Chapters: 24, Testament: TestamentNew},
	{Name: "João", Abbrev: "jo", Chapters: 21, Testament: TestamentNew},
	{Name: "Atos", Abbrev: "at", Chapters: 28, Testament: TestamentNew},
	{Name: "Romanos", Abbrev: "rm", Chapters: 16, Testament: TestamentNew},
	{Name: "1 Coríntios", Abbrev: "1co", Chapters: 16, Testament: TestamentNew},
	{Name: "2 Coríntios", Abbrev: "2co", Chapters: 13, Testament: TestamentNew},
	{Name: "Gálatas", Abbrev: "gl", Chapters: 6, Testament: TestamentNew},
	{Name: "Efésios", Abbrev: "ef", Chapters: 6, Testament: TestamentNew},
	{Name: "Filipenses", Abbrev: "fp", Chapters: 4, Testament: TestamentNew},
	{Name: "Colossenses", Abbrev: "cl", Chapters: 4, Testament: TestamentNew},
	{Name: "1 Tessalonicenses", Abbrev: "1ts", Chapters: 5, Testament: TestamentNew},
	{Name: "2 Tessalonicenses", Abbrev: "2ts", Chapters: 3, Testament: TestamentNew},
	{Name: "1 Timóteo", Abbrev: "1tm", Chapters: 6, Testament: TestamentNew},
	{Name: "2 Timóteo", Abbrev: "2tm", Chapters: 4, Testament: TestamentNew},
	{Name: "Tito", Abbrev: "tt", Chapters: 3, Testament: TestamentNew},
	{Name: "Filemom", Abbrev: "fm", Chapters: 1, Testament: TestamentNew},
	{Name: "Hebreus", Abbrev: "hb", Chapters: 13, Testament: TestamentNew},
	{Name: "Tiago", Abbrev: "tg", Chapters: 5, Testament: TestamentNew},
	{Name: "1 Pedro", Abbrev: "1pe", Chapters: 5, Testament: TestamentNew},
	{Name: "2 Pedro", Abbrev: "2pe", Chapters: 3, Testament: TestamentNew},
	{Name: "1 João", Abbrev: "1jo", Chapters: 5, Testament: TestamentNew},
	{Name: "2 João", Abbrev: "2jo", Chapters: 1, Testament: TestamentNew},
	{Name: "3 João", Abbrev: "3jo", Chapters: 1, Testament: TestamentNew},
	{Name: "Judas", Abbrev: "jd", Chapters: 1, Testament: TestamentNew},
	{Name: "Apocalipse", Abbrev: "ap", Chapters: 22, Testament: TestamentNew},
}

// FindBook looks a book up by its display name.
func FindBook(name string) (Book, bool) {
	for _, b := range Canon {
		if b.Name == name {
			return b, true
		}
	}
	return Book{}, false
}

// IsOldTestament reports whether the named book belongs to the old testament,
// which decides between Hebrew and Greek lexical analysis.
func IsOldTestament(name string) bool {
	b, ok := FindBook(name)
	return ok && b.Testament == TestamentOld
}
