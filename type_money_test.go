package logbook

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(10).Add(USD(2.5)); !got.Equal(USD(12.5)) {
		t.Errorf("Add = %v", got)
	}
	if got := USD(10).Sub(USD(2.5)); !got.Equal(USD(7.5)) {
		t.Errorf("Sub = %v", got)
	}
	if got := USD(10).Mul(Q(3)); !got.Equal(USD(30)) {
		t.Errorf("Mul = %v", got)
	}
	if got := USD(10).Div(Q(4)); !got.Equal(USD(2.5)) {
		t.Errorf("Div = %v", got)
	}
	// exactness: 0.1+0.2 is exactly 0.3 in decimal math
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.1+0.2 = %v, want exactly 0.3", got)
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// the "" currency is totally weak and adopts the other operand's
	got := M(5.0, "").Add(USD(10))
	if got.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD", got.Currency())
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to TWD should panic")
		}
	}()
	USD(1).Add(TWD(1))
}

func TestMoney_Scale(t *testing.T) {
	got := USD(100).Scale(newDecimal(32.5), "TWD")
	if !got.Equal(TWD(3250)) || got.Currency() != "TWD" {
		t.Errorf("Scale = %v, want %v", got, TWD(3250))
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{USD(0), "-"},
		{USD(1234.5), "+$1,234.50"},
		{USD(-1234.5), "-$1,234.50"},
	}
	for _, tc := range testCases {
		if got := tc.in.SignedString(); got != tc.want {
			t.Errorf("SignedString(%v) = %q, want %q", tc.in.Decimal(), got, tc.want)
		}
	}
}

func TestPercent_Equal(t *testing.T) {
	if !Percent(24.24242).Equal(Percent(24.2424)) {
		t.Error("Percent.Equal should tolerate tiny float noise")
	}
	if Percent(24).Equal(Percent(25)) {
		t.Error("Percent.Equal too loose")
	}
}
