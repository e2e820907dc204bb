package wordlist

import _ "embed"

//go:embed data/english.txt
var englishWords string

//go:embed data/simplified_chinese.txt
var simplifiedChineseWords string
