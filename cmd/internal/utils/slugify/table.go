package slugify

var table = map[rune]string{
	// punctuation
	'‘': "'", '’': "'", '«': `"`, '»': `"`, '“': `"`, '”': `"`,
	'–': "-", '—': "-", '‒': "-", '−': "-", '…': "...", '№': "#",

	// upper
	'Щ': "Sch",
	'Ё': "Yo", 'Ж': "Zh", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Ы': "Yi", 'Ю': "Yu", 'Я': "Ya",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'З': "Z", 'И': "I",
	'Й': "J", 'К': "K", 'Л': "L", 'М': "M", 'Н': "N", 'О': "O", 'П': "P", 'Р': "R",
	'С': "S", 'Т': "T", 'У': "U", 'Ф': "F", 'Х': "H", 'Э': "E", 'Ъ': "`", 'Ь': "'",

	// lower
	'щ': "sch",
	'ё': "yo", 'ж': "zh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'ы': "yi", 'ю': "yu", 'я': "ya",
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'з': "z", 'и': "i",
	'й': "j", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "h", 'э': "e", 'ъ': "`", 'ь': "'",

	// ukrainian
	'Є': "Ye", 'І': "I", 'Ї': "Yi", 'Ґ': "G",
	'є': "ye", 'і': "i", 'ї': "yi", 'ґ': "g",
}
