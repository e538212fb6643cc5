package card

// Rich-text bodies understood by the launcher's Pango renderer.

const conversionTemplate = `<span font_desc="monospace">
─── <b><i>Currency Conversion</i></b> ───

<b>%.2f %v</b> = <b>%.2f %v</b>

Exchange Rate: 1 %v = %.6f %v
Inverse Rate: 1 %v = %.6f %v

Date: %v
────────────
</span>`

const usageTemplate = `<span font_desc="monospace">
─── <b><i>Usage Examples</i></b> ───

• cc 100 usd chf
• cc 50 eur in gbp
• cc 1000 jpy usd
• cc 25.5 cad aud

Supported: 30+ major currencies including:
USD, EUR, GBP, JPY, CHF, CAD, AUD, etc.

Note: Cryptocurrencies not supported by this API
────────────
</span>`

const unsupportedTemplate = `<span font_desc="monospace">
─── <b><i>Currency Not Supported</i></b> ───

'%v' or '%v' is not supported by Frankfurter API.

Supported currencies include:
• Major: USD, EUR, GBP, JPY, CHF, CAD, AUD
• European: SEK, NOK, DKK, PLN, CZK, HUF
• Asian: CNY, HKD, SGD, KRW, INR, THB
• Others: BRL, MXN, ZAR, TRY, RUB

Note: Cryptocurrencies are not supported
────────────
</span>`

const networkTemplate = `<span font_desc="monospace">
─── <b><i>Network Error</i></b> ───

Failed to connect to Frankfurter API.
Please check your internet connection and try again.

Error: %v
────────────
</span>`

const genericTemplate = `<span font_desc="monospace">
─── <b><i>Conversion Error</i></b> ───

An error occurred during conversion:
%v

Please verify currency codes and try again.
────────────
</span>`
