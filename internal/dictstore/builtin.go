package dictstore

import (
	"fmt"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// builtinWords is the fallback word list used when no external
// dictionary source yields data. It covers only very common Myanmar
// words; degraded-mode results are expected to be noisier.
var builtinWords = []string{
	"မြန်မာ",    // Myanmar
	"မြန်မာစာ",  // Myanmar (written language)
	"စာအုပ်",    // book
	"စာပေ",      // literature
	"စာရေးဆရာ",  // author
	"ထုတ်ဝေသူ",  // publisher
	"အခန်း",     // chapter
	"စာမျက်နှာ", // page
	"ကျောင်း",   // school
	"ဆရာ",       // teacher
	"ကလေး",      // child
	"မိခင်",     // mother
	"ဖခင်",      // father
	"အိမ်",      // house
	"နိုင်ငံ",   // country
	"မြို့",     // city
	"ရွာ",       // village
	"လမ်း",      // road
	"ရေ",        // water
	"ထမင်း",     // meal
	"နေ့",       // day
	"ည",         // night
	"နှစ်",      // year
	"အချိန်",    // time
	"အလုပ်",     // work
	"ငွေ",       // money
	"ပညာ",       // knowledge
	"ကောင်း",    // good
	"ကြီး",      // big
	"သေး",       // small
	"ရေး",       // write
	"ဖတ်",       // read
	"ပြော",      // speak
	"သွား",      // go
	"လာ",        // come
	"နေ",        // live / stay
	"စား",       // eat
	"သောက်",     // drink
	"မြင်",      // see
	"ကြည့်",     // look
	"လူ",        // person
	"ကျွန်တော်", // I (male)
	"ကျွန်မ",    // I (female)
	"သူ",        // he / she
	"ငါ",        // I (informal)
}

// Builtin returns the fallback in-memory source.
func Builtin() *Static {
	entries := make([]document.DictionaryEntry, 0, len(builtinWords))
	for i, w := range builtinWords {
		entries = append(entries, document.DictionaryEntry{
			ID:          fmt.Sprintf("builtin-%d", i),
			Word:        w,
			WordUnicode: w,
			Frequency:   1,
			IsValid:     true,
		})
	}
	return &Static{Entries: entries}
}
