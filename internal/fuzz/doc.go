// Package fuzztests houses Go fuzz harnesses for the corec front end
// (source -> lexer -> parser). They guard against panics, hangs and
// nondeterminism on arbitrary input.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
