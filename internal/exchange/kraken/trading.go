package kraken

// AddOrder submits an order. Submission failures carry the exchange's
// message and are never retried here.
func (c *Client) AddOrder(req OrderRequest) (*OrderConfirmation, error) {
	args := map[string]string{
		"price": req.Price.String(),
	}

	resp, err := c.api.AddOrder(req.Pair, req.Side, req.Type, req.Volume.String(), args)
	if err != nil {
		return nil, wrapError("AddOrder", err)
	}

	if len(resp.TransactionIds) == 0 {
		return nil, &APIError{Kind: ErrKindRequestFailed, Operation: "AddOrder", Message: "no transaction id returned"}
	}

	return &OrderConfirmation{
		TransactionID: resp.TransactionIds[0],
		Description:   resp.Description.Order,
	}, nil
}
