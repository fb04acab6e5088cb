// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser -> ir). They guard against panics, broken span
// coverage and hangs on arbitrary input.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// lowering и проверять инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
