package telemetry

// Store holds the most recent record of each kind plus the stock cursor.
//
// It has a single owner (the device context) and is mutated in place by the
// frame decoder; the renderer only reads it. Every mutation leaves it in a
// renderable state.
type Store struct {
	Stocks   [StockCount]Stock
	Selected uint8
	Metro    Metro
	Weather  Weather
}

// SelectedStock returns the stock the cursor points at.
func (st *Store) SelectedStock() *Stock {
	if st.Selected >= StockCount {
		st.Selected = 0
	}
	return &st.Stocks[st.Selected]
}

// SelectedSymbol returns the display code for the cursor position.
func (st *Store) SelectedSymbol() string {
	if st.Selected >= StockCount {
		return stockSymbols[0]
	}
	return stockSymbols[st.Selected]
}

// SelectNext advances the stock cursor cyclically.
func (st *Store) SelectNext() {
	st.Selected = (st.Selected + 1) % StockCount
}

// SelectPrev retreats the stock cursor cyclically.
func (st *Store) SelectPrev() {
	st.Selected = (st.Selected + StockCount - 1) % StockCount
}

// Symbol returns the display code for a stock index.
func Symbol(index uint8) string {
	if index >= StockCount {
		return "????"
	}
	return stockSymbols[index]
}
