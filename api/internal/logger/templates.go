package logger

func (l Logger) TemplActivationErr(message string, errorId string, storeId string, provider string, err error) string {
	l.templLog(LL_ERROR, message, "store_id", storeId, "provider", provider, "error", err.Error(), "error_id", errorId)
	return errorId
}

func (l Logger) TemplActivationInfo(message string, storeId string, provider string, active bool) {
	l.templLog(LL_INFO, message, "store_id", storeId, "provider", provider, "active", active)
}

func (l Logger) TemplApprovalInfo(message string, requestId string, userId string, status string) {
	l.templLog(LL_INFO, message, "request_id", requestId, "user_id", userId, "status", status)
}

func (l Logger) TemplSettlementErr(message string, saleId string, storeId string, err error) {
	l.templLog(LL_ERROR, message, "sale_id", saleId, "store_id", storeId, "error", err.Error())
}

func (l Logger) TemplSettlementInfo(message string, saleId string, storeId string, amount string) {
	l.templLog(LL_INFO, message, "sale_id", saleId, "store_id", storeId, "amount", amount)
}

// use only for fatal errors
func (l Logger) TemplHTTPError(message string, ipv4 string, err error) {
	l.templLog(LL_FATAL, message, "error", err.Error(), "ipv4", ipv4)
}

func (l Logger) TemplNatsError(message, natsUrl string, err error) {
	l.templLog(LL_ERROR, message, "nats_url", natsUrl, "error", err.Error())
}

func (l Logger) TemplNatsInfo(message, natsUrl string) {
	l.templLog(LL_INFO, message, "nats_url", natsUrl, "error", NA)
}
