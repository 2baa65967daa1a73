package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Genera el acertijo para la fecha: 2025-06-01.", UserMessage("2025-06-01"))
	assert.Equal(t, "Genera el acertijo para la fecha: .", UserMessage(""))
	assert.Equal(t, UserMessage("lunes"), UserMessage("lunes"))
}

func TestSystemInstructionAsksForJSON(t *testing.T) {
	assert.Contains(t, SystemInstruction, `"answer"`)
	assert.Contains(t, SystemInstruction, `"clues"`)
	assert.Contains(t, SystemInstruction, "5 pistas")
}
