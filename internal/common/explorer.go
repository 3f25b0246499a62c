package common

import "net/url"

const explorerBase = "https://explorer.solana.com"

// ExplorerTxURL builds a human-followable explorer link for a transaction
// signature. cluster is the explorer query suffix for the network ("" for
// mainnet, "devnet", "testnet", or a custom endpoint URL).
func ExplorerTxURL(signature, cluster string) string {
	return explorerBase + "/tx/" + signature + clusterSuffix(cluster)
}

// ExplorerAddressURL builds an explorer link for an account address.
func ExplorerAddressURL(address, cluster string) string {
	return explorerBase + "/address/" + address + clusterSuffix(cluster)
}

func clusterSuffix(cluster string) string {
	switch {
	case cluster == "":
		return ""
	case cluster == "devnet" || cluster == "testnet":
		return "?cluster=" + cluster
	default:
		// Local or custom endpoint: the explorer takes the RPC URL itself.
		return "?cluster=custom&customUrl=" + url.QueryEscape(cluster)
	}
}
