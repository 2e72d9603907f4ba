package gomatch_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGomatch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gomatch Suite")
}
