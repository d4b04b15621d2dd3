package schema

// OFX returns the built-in schema for OFX response documents rooted at
// <OFX>. The forest is shared; callers must treat it as read-only.
func OFX() *Node {
	return ofxRoot
}

// The tables below describe the OFX 1.x/2.x response aggregates this
// package understands: signon, investment statements and the security
// list. Aggregates absent from the tables are reported as unrecognized
// and passed through as raw text.

var status = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"CODE":     String,
		"SEVERITY": String,
		"MESSAGE":  String,
	},
}

var signonFI = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"ORG": String,
		"FID": String,
	},
}

var signonSONRS = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"STATUS": status,
		"FI":     signonFI,
	},
	Leaves: map[string]Kind{
		"DTSERVER":   Datetime,
		"DTPROFUP":   Datetime,
		"LANGUAGE":   String,
		"SESSCOOKIE": String,
	},
}

var signonMsgs = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"SONRS": signonSONRS,
	},
}

var signupMsgs = &Node{
	Serialize: Object,
}

var invAcctFrom = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"BROKERID": String,
		"ACCTID":   String,
	},
}

var currency = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"CURRATE": String,
		"CURSYM":  String,
	},
}

var escrowAmt = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"ESCRWTOTAL": Number,
		"ESCRWTAX":   Number,
		"ESCRWINS":   Number,
		"ESCRWPMI":   Number,
		"ESCRWFEES":  Number,
		"ESCRWOTHER": Number,
	},
}

var payee = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"NAME":       String,
		"ADDR1":      String,
		"ADDR2":      String,
		"ADDR3":      String,
		"CITY":       String,
		"STATE":      String,
		"POSTALCODE": String,
		"COUNTRY":    String,
		"PHONE":      String,
	},
}

var bankAcctTo = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"BANKID":   String,
		"BRANCHID": String,
		"ACCTID":   String,
		"ACCTTYPE": String,
		"ACCTKEY":  String,
	},
}

var ccAcctTo = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"ACCTID":  String,
		"ACCTKEY": String,
	},
}

var loanPmtInfo = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"ESCRWAMT": escrowAmt,
	},
	Leaves: map[string]Kind{
		"PRINAMT":    Number,
		"INTAMT":     Number,
		"INSURANCE":  Number,
		"LATEFEEAMT": Number,
		"OTHERAMT":   Number,
	},
}

var imageData = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"IMAGETYPE":    String,
		"IMAGEREF":     String,
		"IMAGEREFTYPE": String,
		"IMAGEDELAY":   String,
		"DTIMAGEAVAIL": String,
		"IMAGETTL":     String,
		"CHECKSUP":     String,
	},
}

var stmtTrn = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"LOANPMTINFO":  loanPmtInfo,
		"PAYEE":        payee,
		"BANKACCTTO":   bankAcctTo,
		"CCACCTTO":     ccAcctTo,
		"IMAGEDATA":    imageData,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"TRNTYPE":       String,
		"DTPOSTED":      Datetime,
		"DTUSER":        Datetime,
		"DTAVAIL":       Datetime,
		"TRNAMT":        Number,
		"FITID":         String,
		"CORRECTFITID":  String,
		"CORRECTACTION": String,
		"SRVRTID":       String,
		"CHECKNUM":      String,
		"REFNUM":        String,
		"SIC":           String,
		"PAYEEID":       String,
		"NAME":          String,
		"EXTDNAME":      String,
		"MEMO":          String,
		"INV401KSOURCE": String,
	},
}

var secID = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"UNIQUEID":     String,
		"UNIQUEIDTYPE": String,
	},
}

var invTran = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"FITID":         String,
		"SRVRTID":       String,
		"DTTRADE":       Datetime,
		"DTSETTLE":      Datetime,
		"REVERSALFITID": String,
		"MEMO":          String,
	},
}

var invBuy = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN": invTran,
		"SECID":   secID,
	},
	Leaves: map[string]Kind{
		"UNITS":       Number,
		"UNITPRICE":   Number,
		"TOTAL":       Number,
		"SUBACCTSEC":  String,
		"SUBACCTFUND": String,
	},
}

var invSell = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":      invTran,
		"SECID":        secID,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"UNITS":            Number,
		"UNITPRICE":        Number,
		"MARKDOWN":         Number,
		"COMMISSION":       Number,
		"TAXES":            Number,
		"FEES":             Number,
		"LOAD":             Number,
		"WITHHOLDING":      Number,
		"TAXEXEMPT":        Boolean,
		"TOTAL":            Number,
		"GAIN":             Number,
		"SUBACCTSEC":       String,
		"SUBACCTFUND":      String,
		"LOANID":           String,
		"STATEWITHHOLDING": Number,
		"PENALTY":          Number,
		"INV401KSOURCE":    String,
	},
}

var invBankTran = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"STMTTRN": stmtTrn,
	},
	Leaves: map[string]Kind{
		"SUBACCTFUND": String,
	},
}

var sellDebt = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVSELL": invSell,
	},
	Leaves: map[string]Kind{
		"SELLREASON": String,
		"ACCRDINT":   Number,
	},
}

var sellMF = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVSELL": invSell,
	},
	Leaves: map[string]Kind{
		"SELLTYPE":     String,
		"AVGCOSTBASIS": Number,
		"RELFITID":     String,
	},
}

var sellOpt = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVSELL": invSell,
	},
	Leaves: map[string]Kind{
		"OPTSELLTYPE": String,
		"SHPERCTRCT":  Number,
		"RELFITID":    String,
		"RELTYPE":     String,
		"SECURED":     String,
	},
}

var sellOther = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVSELL": invSell,
	},
}

var sellStock = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVSELL": invSell,
	},
	Leaves: map[string]Kind{
		"SELLTYPE": String,
	},
}

var buyDebt = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVBUY": invBuy,
	},
	Leaves: map[string]Kind{
		"ACCRDINT": String,
	},
}

var buyMF = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVBUY": invBuy,
	},
	Leaves: map[string]Kind{
		"BUYTYPE":  String,
		"RELFITID": String,
	},
}

var buyOpt = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVBUY": invBuy,
	},
	Leaves: map[string]Kind{
		"OPTBUYTYPE": String,
		"SHPERCTRCT": Number,
	},
}

var buyOther = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVBUY": invBuy,
	},
}

var buyStock = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVBUY": invBuy,
	},
	Leaves: map[string]Kind{
		"BUYTYPE": String,
	},
}

var closureOpt = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN": invTran,
		"SECID":   secID,
	},
	Leaves: map[string]Kind{
		"OPTACTION":  String,
		"UNITS":      Number,
		"SHPERCTRCT": Number,
		"SUBACCTSEC": String,
		"RELFITID":   String,
		"GAIN":       Number,
	},
}

var income = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":      invTran,
		"SECID":        secID,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"INCOMETYPE":    String,
		"TOTAL":         Number,
		"SUBACCTSEC":    String,
		"SUBACCTFUND":   String,
		"TAXEXEMPT":     Boolean,
		"WITHHOLDING":   Number,
		"INV401KSOURCE": String,
	},
}

var invExpense = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":      invTran,
		"SECID":        secID,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"TOTAL":         Number,
		"SUBACCTSEC":    String,
		"SUBACCTFUND":   String,
		"INV401KSOURCE": String,
	},
}

var jrnlFund = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN": invTran,
	},
	Leaves: map[string]Kind{
		"SUBACCTTO":   String,
		"SUBACCTFROM": String,
		"TOTAL":       Number,
	},
}

var jrnlSec = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN": invTran,
		"SECID":   secID,
	},
	Leaves: map[string]Kind{
		"SUBACCTTO":   String,
		"SUBACCTFROM": String,
		"UNITS":       Number,
	},
}

var marginInterest = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":      invTran,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"TOTAL":       Number,
		"SUBACCTFUND": String,
	},
}

var reinvest = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":      invTran,
		"SECID":        secID,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"INCOMETYPE":    String,
		"TOTAL":         Number,
		"SUBACCTSEC":    String,
		"UNITS":         Number,
		"UNITPRICE":     Number,
		"COMMISSION":    Number,
		"TAXES":         Number,
		"FEES":          Number,
		"LOAD":          Number,
		"TAXEXEMPT":     Boolean,
		"INV401KSOURCE": String,
	},
}

var retOfCap = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":      invTran,
		"SECID":        secID,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"SUBACCTSEC":    String,
		"SUBACCTFUND":   String,
		"UNITS":         Number,
		"INV401KSOURCE": String,
	},
}

var split = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":      invTran,
		"SECID":        secID,
		"CURRENCY":     currency,
		"ORIGCURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"SUBACCTSEC":    String,
		"OLDUNITS":      Number,
		"NEWUNITS":      Number,
		"NUMERATOR":     Number,
		"DENOMINATOR":   Number,
		"FRACCASH":      Number,
		"SUBACCTFUND":   String,
		"INV401KSOURCE": String,
	},
}

var transfer = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVTRAN":     invTran,
		"SECID":       secID,
		"INVACCTFROM": invAcctFrom,
	},
	Leaves: map[string]Kind{
		"SUBACCTSEC":    String,
		"UNITS":         Number,
		"TFERACTION":    String,
		"POSTYPE":       String,
		"AVGCOSTBASIS":  Number,
		"UNITPRICE":     Number,
		"DTPURCHASE":    Datetime,
		"INV401KSOURCE": String,
	},
}

var invTranList = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVBANKTRAN":    invBankTran,
		"BUYDEBT":        buyDebt,
		"BUYMF":          buyMF,
		"BUYOPT":         buyOpt,
		"BUYOTHER":       buyOther,
		"BUYSTOCK":       buyStock,
		"CLOSUREOPT":     closureOpt,
		"INCOME":         income,
		"INVEXPENSE":     invExpense,
		"JRNLFUND":       jrnlFund,
		"JRNLSEC":        jrnlSec,
		"MARGININTEREST": marginInterest,
		"REINVEST":       reinvest,
		"RETOFCAP":       retOfCap,
		"SELLDEBT":       sellDebt,
		"SELLMF":         sellMF,
		"SELLOPT":        sellOpt,
		"SELLOTHER":      sellOther,
		"SELLSTOCK":      sellStock,
		"SPLIT":          split,
		"TRANSFER":       transfer,
	},
	Leaves: map[string]Kind{
		"DTSTART": Datetime,
		"DTEND":   Datetime,
	},
}

var invPos = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"SECID":    secID,
		"CURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"HELDINACCT":    String,
		"POSTYPE":       String,
		"UNITS":         Number,
		"UNITPRICE":     Number,
		"MKTVAL":        Number,
		"AVGCOSTBASIS":  Number,
		"DTPRICEASOF":   Datetime,
		"MEMO":          String,
		"INV401KSOURCE": String,
	},
}

var posDebt = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVPOS": invPos,
	},
}

var posMF = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVPOS": invPos,
	},
	Leaves: map[string]Kind{
		"UNITSSTREET": Number,
		"UNITSUSER":   Number,
		"REINVDIV":    Boolean,
		"REINVCG":     Boolean,
	},
}

var posOpt = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVPOS": invPos,
	},
	Leaves: map[string]Kind{
		"SECURED": String,
	},
}

var posOther = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVPOS": invPos,
	},
}

var posStock = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVPOS": invPos,
	},
	Leaves: map[string]Kind{
		"UNITSSTREET": Number,
		"UNITSUSER":   Number,
		"REINVDIV":    Boolean,
	},
}

var invPosList = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"POSMF":    posMF,
		"POSSTOCK": posStock,
		"POSDEBT":  posDebt,
		"POSOPT":   posOpt,
		"POSOTHER": posOther,
	},
}

var invBal = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"AVAILCASH":     Number,
		"MARGINBALANCE": Number,
		"SHORTBALANCE":  Number,
	},
}

var invStmtRS = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"INVACCTFROM": invAcctFrom,
		"INVTRANLIST": invTranList,
		"INVPOSLIST":  invPosList,
		"INVBAL":      invBal,
	},
	Leaves: map[string]Kind{
		"DTASOF":   Datetime,
		"CURDEF":   String,
		"MKTGINFO": String,
	},
}

var invStmtTrnRS = &Node{
	Serialize: NamedObjectInArray,
	Children: map[string]*Node{
		"STATUS":    status,
		"INVSTMTRS": invStmtRS,
	},
	Leaves: map[string]Kind{
		"TRNUID":    String,
		"CLTCOOKIE": String,
	},
}

var invStmtMsgs = &Node{
	Serialize: Array,
	Children: map[string]*Node{
		"INVSTMTTRNRS": invStmtTrnRS,
	},
}

var secInfo = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"SECID":    secID,
		"CURRENCY": currency,
	},
	Leaves: map[string]Kind{
		"SECNAME":   String,
		"TICKER":    String,
		"FIID":      String,
		"RATING":    String,
		"UNITPRICE": Number,
		"DTASOF":    Datetime,
		"MEMO":      String,
	},
}

var debtInfo = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"SECINFO": secInfo,
	},
	Leaves: map[string]Kind{
		"PARVALUE":     Number,
		"DEBTTYPE":     String,
		"DEBTCLASS":    String,
		"COUPONRT":     Number,
		"DTCOUPON":     Datetime,
		"COUPONFREQ":   Datetime,
		"CALLPRICE":    Number,
		"YIELDTOCALL":  Number,
		"DTCALL":       Datetime,
		"CALLTYPE":     String,
		"YIELDTOMAT":   String,
		"DTMAT":        Datetime,
		"ASSETCLASS":   String,
		"FIASSETCLASS": String,
	},
}

var mfAssetPortion = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"ASSETCLASS": String,
		"PERCENT":    Number,
	},
}

var mfAssetClass = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"PORTION": mfAssetPortion,
	},
}

var fiMFAssetPortion = &Node{
	Serialize: Object,
	Leaves: map[string]Kind{
		"FIASSETCLASS": String,
		"PERCENT":      Number,
	},
}

var fiMFAssetClass = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"FIPORTION": fiMFAssetPortion,
	},
}

var mfInfo = &Node{
	Serialize: Object,
	Children: map[string]*Node{
		"SECINFO":        secInfo,
		"MFASSETCLASS":   mfAssetClass,
		"FIMFASSETCLASS": fiMFAssetClass,
	},
	Leaves: map[string]Kind{
		"MFTYPE":      String,
		"YIELD":       Number,
		"DTYIELDASOF": Datetime,
	},
}

var secList = &Node{
	Serialize: NamedObjectInArray,
	Children: map[string]*Node{
		"DEBTINFO": debtInfo,
		"MFINFO":   mfInfo,
	},
}

var secListMsgs = &Node{
	Serialize: Array,
	Children: map[string]*Node{
		"SECLIST": secList,
	},
}

var ofxRoot = &Node{
	Serialize: Suppressed,
	Children: map[string]*Node{
		"SIGNONMSGSRSV1":  signonMsgs,
		"SIGNUPMSGSRSV1":  signupMsgs,
		"INVSTMTMSGSRSV1": invStmtMsgs,
		"SECLISTMSGSRSV1": secListMsgs,
	},
}
