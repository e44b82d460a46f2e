package daemonschema

import "github.com/bnema/pdm/internal/domain/entity"

// Section names of the bitcoin.conf schema.
const (
	SectionCore    = "Core"
	SectionNetwork = "Network"
	SectionRPC     = "RPC"
	SectionWallet  = "Wallet"
	SectionDebug   = "Debug"
	SectionMining  = "Mining"
	SectionZMQ     = "ZMQ"
)

// bitcoinSchema lists the bitcoind options pdm knows about, in display order.
var bitcoinSchema = []entity.ConfigSchema{
	// Core
	{Key: "datadir", ValueType: entity.ConfigTypeString, Section: SectionCore, Default: "",
		Description: "Directory to store data."},
	{Key: "txindex", ValueType: entity.ConfigTypeBoolean, Section: SectionCore, Default: "0",
		Description: "Maintain a full transaction index."},
	{Key: "prune", ValueType: entity.ConfigTypeInteger, Section: SectionCore, Default: "0",
		Description: "Reduce storage requirements by enabling pruning (deleting) of old blocks. 0 = disable."},
	{Key: "blocksonly", ValueType: entity.ConfigTypeBoolean, Section: SectionCore, Default: "0",
		Description: "Reject transactions from network peers."},
	{Key: "dbcache", ValueType: entity.ConfigTypeInteger, Section: SectionCore, Default: "450",
		Description: "Database cache size in megabytes."},
	{Key: "maxmempool", ValueType: entity.ConfigTypeInteger, Section: SectionCore, Default: "300",
		Description: "Keep the transaction memory pool below <n> megabytes."},
	{Key: "pid", ValueType: entity.ConfigTypeString, Section: SectionCore, Default: "bitcoind.pid",
		Description: "Specify pid file. Relative paths will be prefixed by a net-specific datadir location."},

	// Network
	{Key: "testnet", ValueType: entity.ConfigTypeBoolean, Section: SectionNetwork, Default: "0",
		Description: "Run on the test network."},
	{Key: "regtest", ValueType: entity.ConfigTypeBoolean, Section: SectionNetwork, Default: "0",
		Description: "Run on the regression test network."},
	{Key: "signet", ValueType: entity.ConfigTypeBoolean, Section: SectionNetwork, Default: "0",
		Description: "Run on the signet network."},
	{Key: "listen", ValueType: entity.ConfigTypeBoolean, Section: SectionNetwork, Default: "1",
		Description: "Accept connections from outside."},
	{Key: "bind", ValueType: entity.ConfigTypeString, Section: SectionNetwork, Default: "0.0.0.0",
		Description: "Bind to given address and always listen on it. Use [host]:port notation for IPv6."},
	{Key: "port", ValueType: entity.ConfigTypeInteger, Section: SectionNetwork, Default: "8333",
		Description: "Listen for connections on <port>."},
	{Key: "maxconnections", ValueType: entity.ConfigTypeInteger, Section: SectionNetwork, Default: "125",
		Description: "Maintain at most <n> connections to peers."},
	{Key: "proxy", ValueType: entity.ConfigTypeString, Section: SectionNetwork, Default: "",
		Description: "Connect through SOCKS5 proxy."},
	{Key: "onion", ValueType: entity.ConfigTypeString, Section: SectionNetwork, Default: "",
		Description: "Use separate SOCKS5 proxy to reach peers via Tor onion services."},
	{Key: "upnp", ValueType: entity.ConfigTypeBoolean, Section: SectionNetwork, Default: "0",
		Description: "Use UPnP to map the listening port."},

	// RPC
	{Key: "server", ValueType: entity.ConfigTypeBoolean, Section: SectionRPC, Default: "0",
		Description: "Accept command line and JSON-RPC commands."},
	{Key: "rpcuser", ValueType: entity.ConfigTypeString, Section: SectionRPC, Default: "",
		Description: "Username for JSON-RPC connections."},
	{Key: "rpcpassword", ValueType: entity.ConfigTypeString, Section: SectionRPC, Default: "",
		Description: "Password for JSON-RPC connections."},
	{Key: "rpcauth", ValueType: entity.ConfigTypeString, Section: SectionRPC, Default: "",
		Description: "Username and hashed password for JSON-RPC connections."},
	{Key: "rpcport", ValueType: entity.ConfigTypeInteger, Section: SectionRPC, Default: "8332",
		Description: "Listen for JSON-RPC connections on <port>."},
	{Key: "rpcbind", ValueType: entity.ConfigTypeString, Section: SectionRPC, Default: "",
		Description: "Bind to given address to listen for JSON-RPC connections."},
	{Key: "rpcallowip", ValueType: entity.ConfigTypeString, Section: SectionRPC, Default: "",
		Description: "Allow JSON-RPC connections from specified source. Valid for <ip> are a single IP (e.g. 1.2.3.4), a network/netmask (e.g. 1.2.3.4/255.255.255.0) or a network/CIDR (e.g. 1.2.3.4/24)."},
	{Key: "rpcthreads", ValueType: entity.ConfigTypeInteger, Section: SectionRPC, Default: "4",
		Description: "Set the number of threads to service RPC calls."},

	// Wallet
	{Key: "disablewallet", ValueType: entity.ConfigTypeBoolean, Section: SectionWallet, Default: "0",
		Description: "Do not load the wallet and disable wallet RPC calls."},
	{Key: "fallbackfee", ValueType: entity.ConfigTypeString, Section: SectionWallet, Default: "0.00021",
		Description: "A fee rate (in BTC/kvB) that will be used when fee estimation has insufficient data."},
	{Key: "discardfee", ValueType: entity.ConfigTypeString, Section: SectionWallet, Default: "0.0001",
		Description: "The fee rate (in BTC/kvB) that indicates your tolerance for discarding change by adding it to the fee."},
	{Key: "mintxfee", ValueType: entity.ConfigTypeString, Section: SectionWallet, Default: "0.00001",
		Description: "Fees (in BTC/kvB) smaller than this are considered zero fee for transaction creation."},
	{Key: "paytxfee", ValueType: entity.ConfigTypeString, Section: SectionWallet, Default: "0.00",
		Description: "Fee (in BTC/kvB) to add to transactions you send."},

	// Debug
	{Key: "debug", ValueType: entity.ConfigTypeString, Section: SectionDebug, Default: "",
		Description: "Output debugging information (default: 0, supplying <category> is optional)."},
	{Key: "logips", ValueType: entity.ConfigTypeBoolean, Section: SectionDebug, Default: "0",
		Description: "Include IP addresses in debug output."},
	{Key: "shrinkdebugfile", ValueType: entity.ConfigTypeBoolean, Section: SectionDebug, Default: "1",
		Description: "Shrink debug.log file on client startup (default: 1 when no -debug)."},

	// Mining
	{Key: "blockmaxweight", ValueType: entity.ConfigTypeInteger, Section: SectionMining, Default: "3996000",
		Description: "Set maximum BIP141 block weight (default: 3996000)."},
	{Key: "minrelaytxfee", ValueType: entity.ConfigTypeString, Section: SectionMining, Default: "0.00001",
		Description: "Fees (in BTC/kvB) smaller than this are considered zero fee for relaying, mining and transaction creation."},

	// ZMQ
	{Key: "zmqpubhashblock", ValueType: entity.ConfigTypeString, Section: SectionZMQ, Default: "tcp://127.0.0.1:28332",
		Description: "Enable publish hash block in <address>."},
	{Key: "zmqpubhashtx", ValueType: entity.ConfigTypeString, Section: SectionZMQ, Default: "tcp://127.0.0.1:28332",
		Description: "Enable publish hash transaction in <address>."},
	{Key: "zmqpubrawblock", ValueType: entity.ConfigTypeString, Section: SectionZMQ, Default: "tcp://127.0.0.1:28332",
		Description: "Enable publish raw block in <address>."},
	{Key: "zmqpubrawtx", ValueType: entity.ConfigTypeString, Section: SectionZMQ, Default: "tcp://127.0.0.1:28332",
		Description: "Enable publish raw transaction in <address>."},
}
