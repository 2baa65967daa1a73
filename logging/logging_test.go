package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLoggerIsShared(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
}

func TestInitLoggerSetsLevel(t *testing.T) {
	l := GetLogger()
	old := l.GetLevel()
	defer l.SetLevel(old)

	InitLogger(logrus.DebugLevel)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}
