// Package puzzle holds the fixed prompt used to ask the model for the daily riddle.
package puzzle

import "fmt"

// SystemInstruction tells the model what game it is generating for and the
// exact JSON shape the answer must have.
const SystemInstruction = `Eres un generador de acertijos para un juego llamado 'El Acertijo del Día'. Tu tarea es crear un desafío diario en español basado en la fecha proporcionada.
La respuesta puede ser una palabra o una frase corta (ej. 'Big Ben', 'ADN', 'Vías del tren').
Prioriza las siguientes temáticas al generar el acertijo:
- Países y ciudades. - Tecnología. - Historia (no tan dificil). - Música de los últimos 40 años (rock y pop). - Cine (no tan difícil pero desafiante).

Muy importante: Todas las referencias culturales, especialmente títulos de películas, series o libros, deben usar los nombres con los que son conocidos en Argentina y América Latina. Evita regionalismos de España. Por ejemplo, 'The Matrix' es 'Matrix', no 'La Matriz'; 'Die Hard' es 'Duro de Matar', no 'La Jungla de Cristal'.

Debes proporcionar 5 pistas en orden de dificultad progresiva: la primera muy difícil y abstracta, y la última muy fácil y directa.
La respuesta debe estar en un formato JSON estricto, sin texto adicional antes o después. El JSON debe tener dos claves: "answer" (string) y "clues" (un array de 5 strings).`

// UserMessage returns the single user turn for the given date. The date is
// not parsed or checked.
func UserMessage(date string) string {
	return fmt.Sprintf("Genera el acertijo para la fecha: %s.", date)
}
