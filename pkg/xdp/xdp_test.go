package xdp

import "testing"

func TestSumPerCPU(t *testing.T) {
	if got := sumPerCPU(nil); got != 0 {
		t.Errorf("sum(nil) = %d, want 0", got)
	}
	if got := sumPerCPU([]uint64{7}); got != 7 {
		t.Errorf("sum([7]) = %d, want 7", got)
	}
	if got := sumPerCPU([]uint64{1, 2, 3, 4}); got != 10 {
		t.Errorf("sum([1 2 3 4]) = %d, want 10", got)
	}
}

func TestNewDriverDefaultObjPath(t *testing.T) {
	d := NewDriver("")
	if d.objPath != DefaultObjPath {
		t.Errorf("objPath = %q, want %q", d.objPath, DefaultObjPath)
	}
	d = NewDriver("/tmp/custom.bpf.o")
	if d.objPath != "/tmp/custom.bpf.o" {
		t.Errorf("objPath = %q, want custom path", d.objPath)
	}
}
