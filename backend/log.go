package backend

import (
	"acertijo/logging"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
